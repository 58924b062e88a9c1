package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/mosaic/geom"
	"github.com/pkg/errors"
)

// Input is newline separated coordinates, "x y" or "x y z". Blocks are separated
// by an empty line: in 2D, the first block is the sites and an optional second
// block is a counterclockwise boundary.
func readBlocks(in io.Reader) ([][][]float64, error) {
	blocks := [][][]float64{}
	block := [][]float64{}
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the block
		if text == "" {
			if len(block) > 0 {
				blocks = append(blocks, block)
				block = [][]float64{}
			}
			continue
		}
		if strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		coordinates := make([]float64, len(fields))
		for i, field := range fields {
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			coordinates[i] = f
		}
		block = append(block, coordinates)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing block if any
	if len(block) > 0 {
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func points2D(block [][]float64) ([]geom.Point2D, error) {
	points := make([]geom.Point2D, len(block))
	for i, coordinates := range block {
		if len(coordinates) != 2 {
			return nil, errors.Errorf("expected 2 coordinates, got %d", len(coordinates))
		}
		points[i] = geom.Point2D{X: coordinates[0], Y: coordinates[1]}
	}
	return points, nil
}

func points3D(block [][]float64) ([]geom.Point3D, error) {
	points := make([]geom.Point3D, len(block))
	for i, coordinates := range block {
		if len(coordinates) != 3 {
			return nil, errors.Errorf("expected 3 coordinates, got %d", len(coordinates))
		}
		points[i] = geom.Point3D{X: coordinates[0], Y: coordinates[1], Z: coordinates[2]}
	}
	return points, nil
}
