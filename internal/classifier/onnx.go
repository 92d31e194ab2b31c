package classifier

import (
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/fernwell/attune/internal/engine/taxonomy"
)

// ortEnv guards process-wide ONNX Runtime initialization.
var ortEnv struct {
	once sync.Once
	err  error
}

func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// ONNX classifies reflection text locally: WordPiece tokenize → BERT-style
// encoder → masked mean pooling → linear head → softmax over the six
// primaries. Create once and reuse; the session load is the expensive part.
type ONNX struct {
	session    *ort.DynamicAdvancedSession
	inputNames []string
	hiddenDim  int64
	tok        *tokenizer
	head       *head
}

// NewONNX loads the encoder model, vocabulary, and classification head. The
// ONNX Runtime shared library is expected next to the model file.
func NewONNX(modelPath, vocabPath, headPath string) (*ONNX, error) {
	libPath := filepath.Join(filepath.Dir(modelPath), "libonnxruntime.so")
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("classifier: initialize onnx runtime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("classifier: read model info: %w", err)
	}

	names := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		names[in.Name] = true
	}
	inputNames := []string{"input_ids", "attention_mask", "token_type_ids"}
	for _, name := range inputNames {
		if !names[name] {
			return nil, fmt.Errorf("classifier: model missing input %q", name)
		}
	}

	if len(outputs) == 0 {
		return nil, fmt.Errorf("classifier: model has no outputs")
	}
	dims := outputs[0].Dimensions
	if len(dims) != 3 {
		return nil, fmt.Errorf("classifier: expected 3D hidden-state output, got %v", dims)
	}
	hiddenDim := dims[2]

	tok, err := newTokenizer(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	h, err := loadHead(headPath, len(taxonomy.CanonicalPrimaries))
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	if int64(h.hidden) != hiddenDim {
		return nil, fmt.Errorf("classifier: head input dim %d != model hidden dim %d", h.hidden, hiddenDim)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("classifier: session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(4)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(modelPath, inputNames, []string{outputs[0].Name}, opts)
	if err != nil {
		return nil, fmt.Errorf("classifier: create session: %w", err)
	}

	return &ONNX{
		session:    session,
		inputNames: inputNames,
		hiddenDim:  hiddenDim,
		tok:        tok,
		head:       h,
	}, nil
}

// Probabilities runs one inference call and returns the softmaxed
// distribution keyed by canonical primary.
func (c *ONNX) Probabilities(text string) (map[string]float64, error) {
	ids, mask, seqLen := c.tok.encode(text)

	hidden, err := c.infer(ids, mask, seqLen)
	if err != nil {
		return nil, err
	}

	pooled := meanPool(hidden, mask, seqLen, c.hiddenDim)
	probs := softmax(c.head.logits(pooled))

	out := make(map[string]float64, len(taxonomy.CanonicalPrimaries))
	for i, primary := range taxonomy.CanonicalPrimaries {
		out[primary] = probs[i]
	}
	return out, nil
}

func (c *ONNX) infer(ids, mask []int64, seqLen int64) ([]float32, error) {
	shape := ort.NewShape(1, seqLen)

	tIDs, err := ort.NewTensor(shape, ids)
	if err != nil {
		return nil, fmt.Errorf("classifier: input_ids tensor: %w", err)
	}
	defer tIDs.Destroy()

	tMask, err := ort.NewTensor(shape, mask)
	if err != nil {
		return nil, fmt.Errorf("classifier: attention_mask tensor: %w", err)
	}
	defer tMask.Destroy()

	tTypes, err := ort.NewTensor(shape, make([]int64, seqLen))
	if err != nil {
		return nil, fmt.Errorf("classifier: token_type_ids tensor: %w", err)
	}
	defer tTypes.Destroy()

	tOut, err := ort.NewEmptyTensor[float32](ort.NewShape(1, seqLen, c.hiddenDim))
	if err != nil {
		return nil, fmt.Errorf("classifier: output tensor: %w", err)
	}
	defer tOut.Destroy()

	if err := c.session.Run([]ort.Value{tIDs, tMask, tTypes}, []ort.Value{tOut}); err != nil {
		return nil, fmt.Errorf("classifier: inference: %w", err)
	}

	src := tOut.GetData()
	out := make([]float32, len(src))
	copy(out, src)
	return out, nil
}

// Close releases ONNX Runtime resources.
func (c *ONNX) Close() error {
	if c.session != nil {
		return c.session.Destroy()
	}
	return nil
}

// meanPool averages per-token hidden states at non-padding positions.
func meanPool(hidden []float32, mask []int64, seqLen, dim int64) []float32 {
	out := make([]float32, dim)
	var count float32
	for s := int64(0); s < seqLen; s++ {
		if mask[s] != 1 {
			continue
		}
		count++
		tokOff := s * dim
		for d := int64(0); d < dim; d++ {
			out[d] += hidden[tokOff+d]
		}
	}
	if count == 0 {
		return out
	}
	inv := 1 / count
	for d := int64(0); d < dim; d++ {
		out[d] *= inv
	}
	return out
}
