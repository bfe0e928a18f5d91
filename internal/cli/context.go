package cli

import (
	"github.com/null993/holidown/internal/source"
	"github.com/null993/holidown/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Source *source.Store
}
