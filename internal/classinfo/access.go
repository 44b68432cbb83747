// Package classinfo holds the immutable value model for classes, methods
// and fields extracted from a VMCF class file: AbstractInfo's shared header,
// the access-flag bitmask, and the three concrete Info records.
package classinfo

// Access is a bitmask of VMCF access/modifier flags, one distinct bit per
// flag in the order declared below. The bit values are not the VMCF
// specification's numeric flag values, so parser flags are mapped onto
// these constants by name (see internal/classdump's access-name table).
type Access uint32

const (
	Public Access = 1 << iota
	Private
	Protected
	Static
	Final
	Super // class-only "treat invokespecial specially" bit; never a real diff signal
	Synchronized
	Volatile
	Bridge
	Varargs
	Transient
	Native
	Interface
	Abstract
	Strict
	Synthetic
	Annotation
	Enum
	Deprecated
)

// IsPublic reports whether the public bit is set.
func (a Access) IsPublic() bool { return a&Public != 0 }

// IsPrivate reports whether the private bit is set.
func (a Access) IsPrivate() bool { return a&Private != 0 }

// IsProtected reports whether the protected bit is set.
func (a Access) IsProtected() bool { return a&Protected != 0 }

// IsPackagePrivate reports whether none of public/protected/private is set.
func (a Access) IsPackagePrivate() bool {
	return !a.IsPublic() && !a.IsProtected() && !a.IsPrivate()
}

func (a Access) IsStatic() bool       { return a&Static != 0 }
func (a Access) IsFinal() bool        { return a&Final != 0 }
func (a Access) IsSuper() bool        { return a&Super != 0 }
func (a Access) IsSynchronized() bool { return a&Synchronized != 0 }
func (a Access) IsVolatile() bool     { return a&Volatile != 0 }
func (a Access) IsBridge() bool       { return a&Bridge != 0 }
func (a Access) IsVarargs() bool      { return a&Varargs != 0 }
func (a Access) IsTransient() bool    { return a&Transient != 0 }
func (a Access) IsNative() bool       { return a&Native != 0 }
func (a Access) IsInterface() bool    { return a&Interface != 0 }
func (a Access) IsAbstract() bool     { return a&Abstract != 0 }
func (a Access) IsStrict() bool       { return a&Strict != 0 }
func (a Access) IsSynthetic() bool    { return a&Synthetic != 0 }
func (a Access) IsAnnotation() bool   { return a&Annotation != 0 }
func (a Access) IsEnum() bool         { return a&Enum != 0 }

// IsDeprecated tests the deprecated bit alone, independent of visibility.
func (a Access) IsDeprecated() bool { return a&Deprecated != 0 }

// WithDeprecated returns a new Access with the deprecated bit forcibly set.
func (a Access) WithDeprecated() Access { return a | Deprecated }
