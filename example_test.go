package objwatch_test

import (
	"fmt"

	"github.com/aretw0/objwatch"
	"github.com/aretw0/objwatch/pkg/object"
)

func ExampleWatch() {
	cfg := object.New()
	cfg.Set("replicas", 1)
	cfg.Set("image", "nginx:1.25")

	_, err := objwatch.Watch(cfg, objwatch.OnNotify(func(c object.Container, key object.Key, newValue, oldValue any) {
		fmt.Printf("%s: %v -> %v\n", key, oldValue, newValue)
	}))
	if err != nil {
		fmt.Println(err)
		return
	}

	cfg.Set("replicas", 3)
	cfg.Set("replicas", 3) // equal value, no notification
	cfg.Set("image", "nginx:1.27")

	// Output:
	// replicas: 1 -> 3
	// image: nginx:1.25 -> nginx:1.27
}

func ExampleOnChange() {
	limits := object.New()
	limits.Set("cpu", 1)

	_, _ = objwatch.Watch(limits, objwatch.OnChange(func(c object.Container, key object.Key, newValue, oldValue any) (any, bool) {
		if n, ok := newValue.(int); ok && n > 4 {
			return 4, true
		}
		return nil, false
	}))

	limits.Set("cpu", 16)
	fmt.Println(limits.Get("cpu"))

	// Output:
	// 4
}

func ExampleWatchMap() {
	inner := object.New()
	inner.Set("port", 80)
	svc := object.New()
	svc.Set("name", "web")
	svc.Set("server", inner)
	svc.Set("hosts", object.NewArray("a.example", "b.example"))

	report, _ := objwatch.WatchMap(svc, map[string]any{
		"onChange": func(c object.Container, key object.Key, newValue, oldValue any) {
			fmt.Printf("changed %s to %v\n", key, newValue)
		},
		"depth":       -1,
		"watchArrays": true,
	})
	fmt.Printf("installed %d\n", report.Installed)

	inner.Set("port", 8080)
	svc.Get("hosts").(*object.Array).SetAt(1, "c.example")

	// Output:
	// installed 4
	// changed port to 8080
	// changed 1 to c.example
}

func ExampleHandle_Unwatch() {
	obj := object.New()
	obj.Set("n", 1)

	h := objwatch.For(obj)
	_, _ = h.Watch(objwatch.OnNotify(func(c object.Container, key object.Key, newValue, oldValue any) {
		fmt.Println("notified", newValue)
	}))
	obj.Set("n", 2)

	report, _ := h.Unwatch()
	obj.Set("n", 3)
	fmt.Println("restored", report.Restored, "value", obj.Get("n"))

	// Output:
	// notified 2
	// restored 1 value 3
}
