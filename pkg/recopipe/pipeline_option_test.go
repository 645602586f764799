package recopipe_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askarn/go-recopipe/pkg/recopipe"
	"github.com/askarn/go-recopipe/pkg/recopipe/drawer"
	"github.com/askarn/go-recopipe/pkg/recopipe/measure"
	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

func TestPipelineMeasureRecordsUnits(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	eng, err := recopipe.New(measure.PipelineMeasure(msr))
	require.NoError(t, err)
	require.NoError(t, eng.RegisterLogic(dropLogic(t, "drop vid2", "vid2")))
	require.NoError(t, eng.RegisterLogic(markerLogic(t, "append marker")))

	eng.SetParameters(itemIDs(t, "vid1", "vid2"), nil)
	_, err = eng.Execute(context.Background())
	require.NoError(t, err)

	metrics := msr.AllMetrics()
	assert.Contains(t, metrics, model.SourceInfo.Label)
	assert.Contains(t, metrics, model.ResultInfo.Label)
	require.Contains(t, metrics, "drop vid2")
	require.Contains(t, metrics, "append marker")

	assert.Positive(t, msr.GetMetric("append marker").GetTotalDuration())
}

func TestPipelineDrawerWritesFile(t *testing.T) {
	t.Parallel()

	svgFileName := filepath.Join(t.TempDir(), "pipeline.svg")
	msr := measure.NewDefaultMeasure()
	eng, err := recopipe.New(
		measure.PipelineMeasure(msr),
		drawer.PipelineDrawer(drawer.NewSVGDrawer(svgFileName), msr),
	)
	require.NoError(t, err)
	require.NoError(t, eng.RegisterLogic(dropLogic(t, "drop vid2", "vid2")))

	eng.SetParameters(itemIDs(t, "vid1", "vid2", "vid3"), nil)
	_, err = eng.Execute(context.Background())
	require.NoError(t, err)
	require.NoError(t, eng.Finish())

	content, err := os.ReadFile(svgFileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "strict digraph")
	assert.Contains(t, string(content), "drop vid2")
}

func TestPipelineDrawerEmptyPipeline(t *testing.T) {
	t.Parallel()

	svgFileName := filepath.Join(t.TempDir(), "pipeline.svg")
	eng, err := recopipe.New(drawer.PipelineDrawer(drawer.NewSVGDrawer(svgFileName), nil))
	require.NoError(t, err)

	eng.SetParameters(itemIDs(t, "vid1"), nil)
	_, err = eng.Execute(context.Background())
	require.NoError(t, err)
	require.NoError(t, eng.Finish())

	content, err := os.ReadFile(svgFileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), model.SourceInfo.Label)
	assert.Contains(t, string(content), model.ResultInfo.Label)
}
