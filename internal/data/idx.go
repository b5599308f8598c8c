package data

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/born-ml/backprop/internal/matrix"
)

const (
	idxImagesMagic = 2051
	idxLabelsMagic = 2049

	// MNISTClasses is the number of digit classes in MNIST.
	MNISTClasses = 10

	pixelScale = 256
)

// ReadIDX decodes an IDX image stream and an IDX label stream into a
// dataset.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes
//	number of cols: 4 bytes
//	pixel data: unsigned bytes (0-255)
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes
//
// Each image becomes a (rows*cols)x1 input with pixels divided by 256. Each
// label becomes a one-hot classes x1 target.
func ReadIDX(images, labels io.Reader, classes int) (*Dataset, error) {
	if classes <= 0 {
		return nil, fmt.Errorf("ReadIDX: %w: %d classes", matrix.ErrConfiguration, classes)
	}
	imgs := bufio.NewReader(images)
	lbls := bufio.NewReader(labels)

	var imgHeader [4]uint32
	if err := readHeader(imgs, imgHeader[:], idxImagesMagic); err != nil {
		return nil, fmt.Errorf("ReadIDX: images: %w", err)
	}
	var lblHeader [2]uint32
	if err := readHeader(lbls, lblHeader[:], idxLabelsMagic); err != nil {
		return nil, fmt.Errorf("ReadIDX: labels: %w", err)
	}

	count, rows, cols := int(imgHeader[1]), int(imgHeader[2]), int(imgHeader[3])
	if count != int(lblHeader[1]) {
		return nil, fmt.Errorf("ReadIDX: %w: %d images but %d labels", ErrMalformed, count, lblHeader[1])
	}
	if count == 0 || rows == 0 || cols == 0 {
		return nil, fmt.Errorf("ReadIDX: %w: empty %dx%dx%d image set", ErrMalformed, count, rows, cols)
	}

	pixels := make([]byte, rows*cols)
	values := make([]float64, rows*cols)
	samples := make([]Sample, count)
	for i := range samples {
		if _, err := io.ReadFull(imgs, pixels); err != nil {
			return nil, fmt.Errorf("ReadIDX: image %d: %w", i, truncated(err))
		}
		label, err := lbls.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("ReadIDX: label %d: %w", i, truncated(err))
		}
		if int(label) >= classes {
			return nil, fmt.Errorf("ReadIDX: label %d: %w: class %d of %d", i, ErrMalformed, label, classes)
		}

		for j, p := range pixels {
			values[j] = float64(p) / pixelScale
		}
		input, err := matrix.NewFromSlice(values, 1)
		if err != nil {
			return nil, err
		}
		target, err := matrix.OneHot(classes, 1, int(label), 0)
		if err != nil {
			return nil, err
		}
		samples[i] = Sample{Input: input, Target: target}
	}
	return New(samples)
}

// LoadIDX reads an IDX image file and an IDX label file from disk.
func LoadIDX(imagesPath, labelsPath string, classes int) (*Dataset, error) {
	images, err := os.Open(imagesPath)
	if err != nil {
		return nil, fmt.Errorf("LoadIDX: %w: %w", ErrResource, err)
	}
	defer images.Close()

	labels, err := os.Open(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("LoadIDX: %w: %w", ErrResource, err)
	}
	defer labels.Close()

	return ReadIDX(images, labels, classes)
}

// LoadMNIST loads the official MNIST training or test set from dir.
//
// Expected files in dir:
//   - train-images-idx3-ubyte (or t10k-images-idx3-ubyte for test)
//   - train-labels-idx1-ubyte (or t10k-labels-idx1-ubyte for test)
func LoadMNIST(dir string, train bool) (*Dataset, error) {
	prefix := "t10k"
	if train {
		prefix = "train"
	}
	return LoadIDX(
		filepath.Join(dir, prefix+"-images-idx3-ubyte"),
		filepath.Join(dir, prefix+"-labels-idx1-ubyte"),
		MNISTClasses,
	)
}

// readHeader reads len(header) big-endian uint32 values and checks the
// first against magic.
func readHeader(r io.Reader, header []uint32, magic uint32) error {
	if err := binary.Read(r, binary.BigEndian, header); err != nil {
		return fmt.Errorf("header: %w", truncated(err))
	}
	if header[0] != magic {
		return fmt.Errorf("%w: invalid magic number: got %d, want %d", ErrMalformed, header[0], magic)
	}
	return nil
}

// truncated classifies a short read as malformed input and anything else as
// an unreadable resource.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated: %w", ErrMalformed, err)
	}
	return fmt.Errorf("%w: %w", ErrResource, err)
}
