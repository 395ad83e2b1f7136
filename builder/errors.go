package builder

import "errors"

var (
	// ErrWrongNamespace indicates the tag's namespace does not match the builder.
	ErrWrongNamespace = errors.New("builder: tag namespace does not match builder")

	// ErrEmptyTag indicates an empty application tag.
	ErrEmptyTag = errors.New("builder: application tag must not be empty")

	// ErrScriptBuild indicates locking script construction failed.
	ErrScriptBuild = errors.New("builder: script build failed")

	// ErrAssembleTx indicates skeleton transaction assembly failed.
	ErrAssembleTx = errors.New("builder: transaction assembly failed")
)
