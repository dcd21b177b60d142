// Package ui is the Bubble Tea shell around the navigation router.
//
// Core abstractions:
//   - View: a screen or major UI region with its own model, update, view (Elm-style)
//   - ContentRegion: the single region a screen is presented into (a nav.Host)
//   - NavBar: the bottom navigation bar; emits SelectTabMsg
//   - FocusManager: tracks and rotates focus between the nav bar and the content
//   - KeybindRegistry / KeyHandler: single keys and SPC-prefixed leader sequences.
//     Bindings are global and run before the focused region sees a key, so q and 1-5
//     apply while the content has focus.
//   - AppModel: root model wiring the router, region, bar and key bindings
package ui
