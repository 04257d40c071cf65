// This file is part of Retrocore.
//
// Retrocore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Retrocore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Retrocore.  If not, see <https://www.gnu.org/licenses/>.

// Package screenshot saves emulated frames as PNG files. Frames are scaled
// with nearest-neighbour interpolation so that pixel edges remain sharp.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"

	"github.com/retromachines/retrocore/clocks"
	"github.com/retromachines/retrocore/curated"
	"golang.org/x/image/draw"
)

// Sentinel error patterns.
const (
	BadFrame   = "screenshot: frame has wrong size (%d bytes)"
	NoFrame    = "screenshot: %v"
	FileExists = "screenshot: file already exists (%s)"
)

// MaxScale is the largest scale accepted by Image() and Save().
const MaxScale = 8

// Image converts an RGB888 frame to an image, scaled by the scale value.
func Image(frame []byte, scale int) (*image.NRGBA, error) {
	if len(frame) != clocks.FrameSize {
		return nil, curated.Errorf(BadFrame, len(frame))
	}
	scale = max(1, min(scale, MaxScale))

	src := image.NewNRGBA(image.Rect(0, 0, clocks.ScreenWidth, clocks.ScreenHeight))
	for i, j := 0, 0; i < len(frame); i, j = i+clocks.BytesPerPixel, j+4 {
		src.Pix[j] = frame[i]
		src.Pix[j+1] = frame[i+1]
		src.Pix[j+2] = frame[i+2]
		src.Pix[j+3] = 0xff
	}

	if scale == 1 {
		return src, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, clocks.ScreenWidth*scale, clocks.ScreenHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Screenshot keeps a copy of the most recent frame.
type Screenshot struct {
	last     []byte
	frameNum int
}

// Record a copy of the frame. The frame number is the number of frames
// recorded so far, starting at zero.
func (sc *Screenshot) Record(frame []byte) error {
	if len(frame) != clocks.FrameSize {
		return curated.Errorf(BadFrame, len(frame))
	}
	if sc.last == nil {
		sc.last = make([]byte, clocks.FrameSize)
	} else {
		sc.frameNum++
	}
	copy(sc.last, frame)
	return nil
}

// Save the most recent frame. The frame number and file extension are
// appended to the filename base. The name of the saved file is returned.
//
// An existing file will not be overwritten.
func (sc *Screenshot) Save(fileNameBase string, scale int) (string, error) {
	if sc.last == nil {
		return "", curated.Errorf(NoFrame, "no frame has been recorded")
	}

	img, err := Image(sc.last, scale)
	if err != nil {
		return "", err
	}

	imageName := fmt.Sprintf("%s_%d.png", fileNameBase, sc.frameNum)

	f, err := os.OpenFile(imageName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", curated.Errorf(FileExists, imageName)
		}
		return "", curated.Errorf("screenshot: %v", err)
	}

	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	return imageName, nil
}
