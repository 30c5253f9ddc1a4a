package pdf

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/rezonia/gst-invoice/internal/model"
)

// Validate runs a structural check over generated PDF bytes. Used by the
// generate --check flag and the tests; a failure here means the layout
// produced a document readers may reject.
func Validate(data []byte) error {
	conf := pdfcpumodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfcpumodel.ValidationRelaxed

	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return model.NewRenderError("validate", "generated PDF failed validation", err)
	}
	return nil
}
