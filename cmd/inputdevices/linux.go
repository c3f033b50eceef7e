//go:build linux

package main

import "github.com/selkies-project/joystick-interposer/internal/slot"

var devices = slot.Registry[:]
