/*
Package domain contains the types shared by the watch engine and its hosts.

It defines the build modes, the per-property results reported by the
interceptor, the events emitted during a build and the lifecycle hooks used to
observe them. The package is kept free of I/O and third-party dependencies.

# Key Entities

  - ChangeFunc: the callback fired by an intercepted property when its value changes.
  - Result: the outcome of installing or removing interception on one property.
  - Report: the statistics of one watch or unwatch build.
  - LifecycleHooks: callbacks for logging, metrics and tooling.
*/
package domain
