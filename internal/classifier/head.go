package classifier

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// head is the linear classification layer over pooled hidden states, loaded
// from a safetensors file: a required "classifier.weight" [classes, hidden]
// tensor and an optional "classifier.bias" [classes] tensor, both F32.
type head struct {
	weights []float32 // row-major [classes, hidden]
	bias    []float32 // nil when absent
	hidden  int
	classes int
}

type tensorMeta struct {
	Dtype       string `json:"dtype"`
	Shape       []int  `json:"shape"`
	DataOffsets [2]int `json:"data_offsets"`
}

func loadHead(path string, wantClasses int) (*head, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}
	if len(data) < 8 {
		return nil, fmt.Errorf("head: file too small: %d bytes", len(data))
	}

	headerLen := binary.LittleEndian.Uint64(data[:8])
	if uint64(len(data)) < 8+headerLen {
		return nil, fmt.Errorf("head: header length %d exceeds file size", headerLen)
	}

	var header map[string]json.RawMessage
	if err := json.Unmarshal(data[8:8+headerLen], &header); err != nil {
		return nil, fmt.Errorf("head: parse header: %w", err)
	}

	weights, shape, err := readTensor(data, int(8+headerLen), header, "classifier.weight")
	if err != nil {
		return nil, err
	}
	if len(shape) != 2 {
		return nil, fmt.Errorf("head: classifier.weight must be 2D, got shape %v", shape)
	}
	classes, hidden := shape[0], shape[1]
	if classes != wantClasses {
		return nil, fmt.Errorf("head: %d output classes, want %d", classes, wantClasses)
	}

	h := &head{weights: weights, hidden: hidden, classes: classes}

	if _, ok := header["classifier.bias"]; ok {
		bias, biasShape, err := readTensor(data, int(8+headerLen), header, "classifier.bias")
		if err != nil {
			return nil, err
		}
		if len(biasShape) != 1 || biasShape[0] != classes {
			return nil, fmt.Errorf("head: classifier.bias shape %v does not match %d classes", biasShape, classes)
		}
		h.bias = bias
	}

	return h, nil
}

func readTensor(data []byte, dataStart int, header map[string]json.RawMessage, name string) ([]float32, []int, error) {
	raw, ok := header[name]
	if !ok {
		return nil, nil, fmt.Errorf("head: tensor %q not found", name)
	}
	var meta tensorMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, nil, fmt.Errorf("head: parse %q metadata: %w", name, err)
	}
	if meta.Dtype != "F32" {
		return nil, nil, fmt.Errorf("head: %q dtype %s, want F32", name, meta.Dtype)
	}

	numFloats := 1
	for _, d := range meta.Shape {
		numFloats *= d
	}
	start := dataStart + meta.DataOffsets[0]
	end := dataStart + meta.DataOffsets[1]
	if end-start != numFloats*4 || end > len(data) {
		return nil, nil, fmt.Errorf("head: %q data range [%d:%d] inconsistent with shape %v", name, start, end, meta.Shape)
	}

	floats := make([]float32, numFloats)
	for i := range floats {
		bits := binary.LittleEndian.Uint32(data[start+i*4 : start+i*4+4])
		floats[i] = math.Float32frombits(bits)
	}
	return floats, meta.Shape, nil
}

// logits applies the linear layer to one pooled vector.
func (h *head) logits(vec []float32) []float64 {
	out := make([]float64, h.classes)
	for i := 0; i < h.classes; i++ {
		row := h.weights[i*h.hidden : (i+1)*h.hidden]
		var sum float32
		for j, w := range row {
			sum += w * vec[j]
		}
		if h.bias != nil {
			sum += h.bias[i]
		}
		out[i] = float64(sum)
	}
	return out
}

// softmax converts logits into a probability distribution, shifted by the max
// for numerical stability.
func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, l := range logits[1:] {
		if l > max {
			max = l
		}
	}
	var sum float64
	out := make([]float64, len(logits))
	for i, l := range logits {
		out[i] = math.Exp(l - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
