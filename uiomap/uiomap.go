//go:build linux && !tinygo

// Package uiomap maps a timer register block that the kernel exposes
// through a UIO device, for parts whose application cores run Linux
// (STM32MP1 and friends) while the timer peripheral sits on the bus as
// usual. The mapped block plugs straight into the core package: wrap it in
// a mutex, describe it with a core.Timer, and drive it like any other.
package uiomap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"

	"stm32pwm/core"
)

const (
	drvUioDev  = "/dev/%s"
	drvMapAddr = "/sys/class/uio/%s/maps/map0/addr"
	drvMapSize = "/sys/class/uio/%s/maps/map0/size"
)

// Map maps the first memory region of the named UIO device (e.g. "uio0")
// and overlays a timer register block on it. The returned closer unmaps
// the region; the register block must not be used after closing.
func Map(device string) (*core.TimerRegs, func() error, error) {
	addr, err := readMapValue(fmt.Sprintf(drvMapAddr, device))
	if err != nil {
		return nil, nil, err
	}
	size, err := readMapValue(fmt.Sprintf(drvMapSize, device))
	if err != nil {
		return nil, nil, err
	}
	return mapDevice(fmt.Sprintf(drvUioDev, device), addr, size)
}

func mapDevice(dev string, addr, size uint64) (*core.TimerRegs, func() error, error) {
	// The mapping is page aligned; the block may start inside the page.
	pageSize := uint64(os.Getpagesize())
	offset := addr % pageSize

	if size < offset+uint64(unsafe.Sizeof(core.TimerRegs{})) {
		return nil, nil, fmt.Errorf("%s: map region too small for a timer block (%d bytes)", dev, size)
	}

	f, err := os.OpenFile(dev, os.O_RDWR|os.O_SYNC, 0660)
	if err != nil {
		return nil, nil, err
	}
	mem, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %v", dev, err)
	}

	regs := (*core.TimerRegs)(unsafe.Pointer(&mem[offset]))
	closer := func() error {
		err := unix.Munmap(mem)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	}
	return regs, closer, nil
}

// readMapValue reads a numeric value from a sysfs attribute. UIO exports
// them as hex strings ("0x40000400").
func readMapValue(file string) (uint64, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %v", file, err)
	}
	return v, nil
}
