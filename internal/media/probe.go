// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/abema/go-mp4"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNoDimensions is returned when a video container carries no visual track.
var ErrNoDimensions = errors.New("no video dimensions found")

// oggProbeLimit bounds how much of an Ogg stream is scanned for the Theora header.
const oggProbeLimit = 64 << 10

var (
	oggMagic    = []byte("OggS")
	theoraIdent = []byte("\x80theora")
)

// ProbeVideo returns the pixel dimensions of the video at path. MP4-family
// files are read from the first track header with a non-zero size; Ogg files
// from the Theora identification header.
func ProbeVideo(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	head := make([]byte, len(oggMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return 0, 0, fmt.Errorf("reading header: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}

	if bytes.Equal(head, oggMagic) {
		return probeTheora(f)
	}
	return probeMP4(f)
}

func probeMP4(r io.ReadSeeker) (int, int, error) {
	boxes, err := mp4.ExtractBoxWithPayload(r, nil, mp4.BoxPath{
		mp4.BoxTypeMoov(), mp4.BoxTypeTrak(), mp4.BoxTypeTkhd(),
	})
	if err != nil {
		return 0, 0, fmt.Errorf("parsing mp4: %w", err)
	}
	for _, b := range boxes {
		tkhd, ok := b.Payload.(*mp4.Tkhd)
		if !ok {
			continue
		}
		w, h := int(tkhd.GetWidthInt()), int(tkhd.GetHeightInt())
		if w > 0 && h > 0 {
			return w, h, nil
		}
	}
	return 0, 0, ErrNoDimensions
}

// probeTheora reads the picture size from the identification header:
// 7 bytes of signature, 3 version bytes, two 16-bit frame sizes in
// macroblocks, then 24-bit picture width and height, all big-endian.
func probeTheora(r io.Reader) (int, int, error) {
	buf, err := io.ReadAll(io.LimitReader(r, oggProbeLimit))
	if err != nil {
		return 0, 0, fmt.Errorf("reading ogg: %w", err)
	}
	i := bytes.Index(buf, theoraIdent)
	if i < 0 || len(buf) < i+20 {
		return 0, 0, ErrNoDimensions
	}
	p := buf[i+14:]
	w := int(p[0])<<16 | int(p[1])<<8 | int(p[2])
	h := int(p[3])<<16 | int(p[4])<<8 | int(p[5])
	if w == 0 || h == 0 {
		return 0, 0, ErrNoDimensions
	}
	return w, h, nil
}

// ProbeImage returns the pixel dimensions of the image at path. ok is false
// when the format is not one of png, jpeg, gif, bmp, tiff, or webp, or the
// file cannot be decoded.
func ProbeImage(path string) (width, height int, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
