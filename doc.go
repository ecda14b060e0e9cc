// Package screenflow manages the screens of an Ebitengine game and the
// visual transitions between them.
//
// Screens and transitions are registered under names on a Manager. Pushing
// a screen by name enqueues the change; the manager applies it on the next
// tick, either cutting directly or playing the named transition effect.
// While a transition runs, both the outgoing and the incoming screen are
// rendered into off-screen capture buffers each frame and the transition
// composites the two captures onto the real target.
//
// The Manager has to be initialized before it can be used. Screen-change
// requests issued while a transition is in flight are queued and honored
// in order, never dropped.
package screenflow
