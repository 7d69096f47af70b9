// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package planartri

import "runtime/debug"

const engineModulePath = "github.com/markus-wa/quickhull-go/v2"

// EngineVersion returns the hull engine's module path and version for
// assistance in debugging. It never fails; an unresolvable version is
// reported as "unknown".
func EngineVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == engineModulePath {
				return dep.Path + "@" + dep.Version
			}
		}
	}
	return engineModulePath + "@unknown"
}
