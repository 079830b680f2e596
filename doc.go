/*
Package objwatch attaches change notification to the properties of an existing object graph.

A watch build walks a graph of object.Object and object.Array values to a
configurable depth and replaces each eligible property with an accessor pair.
Writing a different value to an intercepted property calls the supplied
callback synchronously, on the writer's stack; writing an equal value (see
object.Equal) does nothing. The callback may return an override that becomes
the stored value. An unwatch build walks the whole graph and puts plain data
properties back.

# Concept

There is no separate watch object. The watch lives in the accessors installed
on the graph and lasts until Unwatch restores them or the graph is discarded.
Properties added after a watch was built are not intercepted, and constant
(non-configurable) properties are skipped.

# Usage

	cfg := object.New()
	cfg.Set("replicas", 1)
	cfg.Set("image", "nginx:1.25")

	_, err := objwatch.Watch(cfg, objwatch.OnNotify(
		func(c object.Container, key object.Key, newValue, oldValue any) {
			log.Printf("%s: %v -> %v", key, oldValue, newValue)
		},
	))
	if err != nil {
		log.Fatal(err)
	}

	cfg.Set("replicas", 3) // logs "replicas: 1 -> 3"
	cfg.Set("replicas", 3) // equal value, nothing logged

	objwatch.Unwatch(cfg)

Options can also be given as a map, mirroring the classic option object:

	objwatch.WatchMap(cfg, map[string]any{
		"onChange":    fn,
		"depth":       -1,
		"watchArrays": true,
		"toWatch":     "replicas",
	})
*/
package objwatch
