//go:build linux

package preview

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"github.com/studio-wiz/iconmaker/internal/render"
	"golang.org/x/sys/unix"
)

const evKey = 0x01

// Linux input-event-codes.h
var dismissKeys = map[uint16]string{
	1:  "Esc",
	16: "Q",
	28: "Enter",
	57: "Space",
}

// watchDismissKeys watches evdev devices under /dev/input/event* and calls
// onDismiss once when a dismiss key is pressed. Watchers stop with ctx.
//
// It is best-effort: without readable input devices the preview simply times out.
func watchDismissKeys(ctx context.Context, logger render.Logger, onDismiss func()) {
	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := int(binary.Size(unix.Timeval{}))
	eventSize := tvSize + 2 + 2 + 4

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		logger.Infof("input", "no evdev devices found, preview ends on timeout")
		return
	}

	var once sync.Once
	dismiss := func(key string) {
		once.Do(func() {
			logger.Infof("input", "%s pressed: closing preview", key)
			onDismiss()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, tvSize, eventSize, dismiss)
	}
}

func watchDevice(ctx context.Context, path string, tvSize, eventSize int, dismiss func(string)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	buf := make([]byte, 4096)
	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}

		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
			code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
			if key, ok := dismissKeys[code]; ok && typ == evKey && value == 1 {
				dismiss(key)
				return
			}
		}
	}
}
