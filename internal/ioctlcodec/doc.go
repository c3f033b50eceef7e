// Package ioctlcodec implements the generic ioctl request-code algebra
// from [ioctl.h] in the Linux kernel: packing a direction/type/number/size
// quadruple into the 32-bit request word glibc and the kernel agree on, and
// unpacking that word back into its fields.
//
// The interposer uses both directions: packing to build its own request
// constants ([EVIOCGNAME] and friends live in package inputabi on top of
// this), and unpacking to classify an arbitrary incoming ioctl request from
// a host process it does not control.
//
// [ioctl.h]: https://github.com/torvalds/linux/blob/master/include/uapi/asm-generic/ioctl.h
package ioctlcodec
