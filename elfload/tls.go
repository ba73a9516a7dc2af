package elfload

import (
	"io"

	"github.com/n3kernel/elfloader/internal/iometa"
)

// TLSImage returns a reader that produces the full initial TLS block for
// a PT_TLS segment: the tdata bytes backed by the file, followed by
// zeroed bytes for the remainder up to totalSize (the .tbss portion,
// which the file never stores). A Loader's TLS callback can copy
// straight from this reader instead of hand-rolling the file/bss split
// spec.md describes.
func TLSImage(tdata io.Reader, totalSize, tdataLength uint64) io.Reader {
	bssSize := int(totalSize - tdataLength)
	if bssSize <= 0 {
		return tdata
	}
	return io.MultiReader(tdata, &iometa.ZeroReader{Size: bssSize})
}
