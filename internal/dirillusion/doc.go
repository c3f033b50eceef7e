// Package dirillusion implements the directory- and inotify-illusion
// engine: inventing /dev/input entries for the three enumeration idioms
// real applications use (opendir/readdir/closedir,
// open(O_DIRECTORY)+getdents64, and inotify_add_watch+read), and
// suppressing whatever the trampoline's own enumeration would otherwise
// have returned so callers see exactly the advertised synthetic set.
//
// Every session map here is guarded by a mutex even though a single
// process's own enumeration calls are normally single-threaded
// cooperative, the same caution fsnotify's Watcher applies to its
// watch/path maps despite inotify itself being a single stream per fd.
package dirillusion
