// Package nav routes navigation-bar selections to screens.
//
// Core abstractions:
//   - Target: one of the fixed navigation destinations (Home, Map, Journey, Diary, Profile)
//   - Screen: a presentable unit constructed fresh for every routing decision
//   - Table: total mapping from Target to a Screen factory
//   - Host: the content region that attaches a screen and releases the previous one
//   - Router: owns the active screen and replaces it on every selection
//
// The router holds no history. Selecting a target replaces the active screen; it never
// pushes onto a stack.
package nav
