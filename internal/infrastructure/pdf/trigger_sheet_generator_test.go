package pdf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/pdf"
)

func TestGenerateTriggerSheet_DevuelvePDF(t *testing.T) {
	s := entity.DefaultSettings()
	s.NewLineTriggerBarcode = "NEWLINE"
	s.DeleteRowTriggerBarcode = "DELROW"

	out, err := pdf.NewTriggerSheetGenerator().GenerateTriggerSheet(context.Background(), s.TriggerBarcodes())
	require.NoError(t, err)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateTriggerSheet_SinCodigos(t *testing.T) {
	_, err := pdf.NewTriggerSheetGenerator().GenerateTriggerSheet(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoTriggerBarcodes)
}
