package object

// Getter produces the value of an accessor property.
type Getter func() any

// Setter receives writes to an accessor property.
type Setter func(v any)

// Descriptor holds the attributes of a property.
// A descriptor with Get or Set is an accessor; otherwise it is a data property
// and Value/Writable apply.
type Descriptor struct {
	Value        any
	Get          Getter
	Set          Setter
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// DataProperty returns the descriptor of a plain writable, enumerable, configurable property.
func DataProperty(v any) Descriptor {
	return Descriptor{Value: v, Writable: true, Enumerable: true, Configurable: true}
}

// Constant returns the descriptor of an enumerable property that can be
// neither written nor deleted nor redefined.
func Constant(v any) Descriptor {
	return Descriptor{Value: v, Enumerable: true}
}

// IsAccessor reports whether the descriptor is an accessor pair.
func (d Descriptor) IsAccessor() bool {
	return d.Get != nil || d.Set != nil
}

func (d *Descriptor) read() any {
	if d.IsAccessor() {
		if d.Get == nil {
			return nil
		}
		return d.Get()
	}
	return d.Value
}

func (d *Descriptor) write(v any) bool {
	if d.IsAccessor() {
		if d.Set == nil {
			return false
		}
		d.Set(v)
		return true
	}
	if !d.Writable {
		return false
	}
	d.Value = v
	return true
}

// Container is the property protocol shared by Object and Array.
type Container interface {
	// Keys returns the own enumerable keys in enumeration order.
	Keys() []Key
	// Lookup reads a property, invoking its getter if it is an accessor.
	Lookup(k Key) (any, bool)
	// Assign writes a property, invoking its setter if it is an accessor.
	// Missing properties are created as plain data properties.
	// It returns false when the write was refused.
	Assign(k Key, v any) bool
	// Remove deletes a property. It returns false for non-configurable properties.
	Remove(k Key) bool
	// Define installs a descriptor. Redefining a non-configurable property fails.
	Define(k Key, d Descriptor) bool
	// Describe returns the current descriptor of an own property.
	Describe(k Key) (Descriptor, bool)
}
