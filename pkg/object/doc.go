/*
Package object implements the dynamic object graph that watches are attached to.

Go has no property interception, so the graph is modelled explicitly: an Object
holds ordered string-keyed properties and an Array holds index-keyed elements.
Every property is stored as a Descriptor, which is either a plain data slot or
an accessor pair (Get/Set). Host code reads and writes through the container
methods, which dispatch to the accessor when one is installed.

# Key Entities

  - Key: a property name or an array index.
  - Descriptor: the attributes of a single property (data or accessor).
  - Container: the operations shared by Object and Array.
  - Kind: the traversal classification of a value (object, array or scalar).

The package also defines the equality policy used to decide whether a write
is a change (see Equal).
*/
package object
