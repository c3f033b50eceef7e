//go:build linux

// Package lifecycle implements the cross-cutting fd-lifecycle hooks:
// releasing a slot and its directory/inotify bookkeeping on close, and
// transitioning a registered socket fd to non-blocking mode on
// epoll_ctl(EPOLL_CTL_ADD).
package lifecycle
