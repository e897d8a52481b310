package stability

import (
	"fmt"

	"github.com/clustkit/stability/dataset"
	"github.com/clustkit/stability/split"
)

// foldSelection holds the train and test masks of one fold, per axis.
type foldSelection struct {
	unitTrain *dataset.Mask
	unitTest  *dataset.Mask
	featTrain *dataset.Mask
	featTest  *dataset.Mask
}

// foldMasks resolves one fold's train/test value pairs into axis masks.
// All masks start full and narrow with every space, so several splitters
// acting on the same axis intersect.
func foldMasks(ds *dataset.Dataset, spaces []Space, pairs []split.Pair) (*foldSelection, error) {
	sel := &foldSelection{
		unitTrain: dataset.FullMask(ds.Units()),
		unitTest:  dataset.FullMask(ds.Units()),
		featTrain: dataset.FullMask(ds.Features()),
		featTest:  dataset.FullMask(ds.Features()),
	}

	for i, space := range spaces {
		var (
			ann         *dataset.Annotations
			train, test *dataset.Mask
		)

		switch space.Axis {
		case AxisUnits:
			ann = ds.UnitAnnotations()
			train, test = sel.unitTrain, sel.unitTest
		case AxisFeatures:
			ann = ds.FeatureAnnotations()
			train, test = sel.featTrain, sel.featTest
		default:
			return nil, fmt.Errorf("space %q: %w", space.String(), ErrUnknownAxis)
		}

		m, ok := ann.Membership(space.Attr, pairs[i].Train)
		if !ok {
			return nil, &ErrAnnotationNotFound{Space: space, Available: ann.Names()}
		}

		train.And(m)

		m, ok = ann.Membership(space.Attr, pairs[i].Test)
		if !ok {
			return nil, &ErrAnnotationNotFound{Space: space, Available: ann.Names()}
		}

		test.And(m)
	}

	return sel, nil
}
