package object

// Object is an ordered collection of named properties.
// The zero value is not usable; create objects with New.
type Object struct {
	keys  []string
	props map[string]*Descriptor
}

var _ Container = (*Object)(nil)

// New creates an empty object.
func New() *Object {
	return &Object{props: make(map[string]*Descriptor)}
}

// Len returns the number of own properties, enumerable or not.
func (o *Object) Len() int {
	return len(o.keys)
}

// Has reports whether name is an own property.
func (o *Object) Has(name string) bool {
	_, ok := o.props[name]
	return ok
}

// Get reads a property. Missing properties read as nil.
func (o *Object) Get(name string) any {
	v, _ := o.Lookup(Name(name))
	return v
}

// Set writes a property, creating it if missing.
func (o *Object) Set(name string, v any) bool {
	return o.Assign(Name(name), v)
}

// Delete removes a property. Non-configurable properties are kept and false is returned.
func (o *Object) Delete(name string) bool {
	return o.Remove(Name(name))
}

// Names returns the own enumerable property names in insertion order.
func (o *Object) Names() []string {
	names := make([]string, 0, len(o.keys))
	for _, name := range o.keys {
		if o.props[name].Enumerable {
			names = append(names, name)
		}
	}
	return names
}

func (o *Object) Keys() []Key {
	keys := make([]Key, 0, len(o.keys))
	for _, name := range o.keys {
		if o.props[name].Enumerable {
			keys = append(keys, Name(name))
		}
	}
	return keys
}

func (o *Object) Lookup(k Key) (any, bool) {
	d, ok := o.props[k.Name()]
	if !ok {
		return nil, false
	}
	return d.read(), true
}

func (o *Object) Assign(k Key, v any) bool {
	name := k.Name()
	d, ok := o.props[name]
	if !ok {
		o.keys = append(o.keys, name)
		o.props[name] = &Descriptor{Value: v, Writable: true, Enumerable: true, Configurable: true}
		return true
	}
	return d.write(v)
}

func (o *Object) Remove(k Key) bool {
	name := k.Name()
	d, ok := o.props[name]
	if !ok {
		return true
	}
	if !d.Configurable {
		return false
	}
	delete(o.props, name)
	for i, n := range o.keys {
		if n == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Define keeps the enumeration position of an existing property.
func (o *Object) Define(k Key, d Descriptor) bool {
	name := k.Name()
	cur, ok := o.props[name]
	if ok && !cur.Configurable {
		return false
	}
	if !ok {
		o.keys = append(o.keys, name)
	}
	o.props[name] = &d
	return true
}

func (o *Object) Describe(k Key) (Descriptor, bool) {
	d, ok := o.props[k.Name()]
	if !ok {
		return Descriptor{}, false
	}
	return *d, true
}
