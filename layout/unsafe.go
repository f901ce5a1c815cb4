package layout

import "unsafe"

func ofValue[T any](zero T) Layout {
	return Layout{
		Size:  unsafe.Sizeof(zero),
		Align: uintptr(unsafe.Alignof(zero)),
	}
}
