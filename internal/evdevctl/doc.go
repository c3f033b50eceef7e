// Package evdevctl answers the evdev ioctl ABI ('E' type) for a bound
// slot: identity queries, the parametric EVIOCGABS(k) axis-range law and
// EVIOCGBIT(type, len) bitmap law, and the handful of
// accept-and-return-fixed-value commands evdev clients probe during
// enumeration.
package evdevctl
