package attune

import "path/filepath"

type options struct {
	taxonomyPath string
	useModel     bool
	modelDir     string
	modelPath    string
	vocabPath    string
	headPath     string
	classify     ClassifyFunc
}

// ClassifyFunc scores text over the six primary emotions (happy, sad, angry,
// fearful, surprised, disgusted). The returned distribution must sum to 1.
type ClassifyFunc func(text string) (map[string]float64, error)

// Option configures an Attune instance.
type Option func(*options)

// WithTaxonomy loads the emotion wheel from a YAML or JSON file instead of
// using the built-in wheel. The file must describe a full 6×6×6 hierarchy.
func WithTaxonomy(path string) Option {
	return func(o *options) {
		o.taxonomyPath = path
	}
}

// WithModelDir enables the local ONNX classifier with model files from dir.
// Expects: encoder.onnx, vocab.txt, classifier_head.safetensors.
func WithModelDir(dir string) Option {
	return func(o *options) {
		o.useModel = true
		o.modelDir = dir
	}
}

// WithModelPaths enables the local ONNX classifier with explicit paths for
// each model file. Use this when model files aren't in the default directory
// layout.
func WithModelPaths(model, vocab, head string) Option {
	return func(o *options) {
		o.useModel = true
		o.modelPath = model
		o.vocabPath = vocab
		o.headPath = head
	}
}

// WithClassifier uses fn as the probability source for records that carry no
// distribution of their own. Takes precedence over WithModelDir and
// WithModelPaths.
func WithClassifier(fn ClassifyFunc) Option {
	return func(o *options) {
		o.classify = fn
	}
}

func defaultOptions() options {
	return options{}
}

// resolvePaths determines the model, vocab, and head file paths from the
// configured options. Explicit paths take precedence over modelDir.
func resolvePaths(o options) (model, vocab, head string) {
	if o.modelPath != "" {
		return o.modelPath, o.vocabPath, o.headPath
	}
	dir := o.modelDir
	if dir == "" {
		dir = "models"
	}
	return filepath.Join(dir, "encoder.onnx"),
		filepath.Join(dir, "vocab.txt"),
		filepath.Join(dir, "classifier_head.safetensors")
}
