/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverTextWidthIdentityTransform(t *testing.T) {
	w := RecoverTextWidth(120, 30, 1, 0, 0, 1, 0, 0, 30)
	assert.InDelta(t, 120.0, w, 1e-9)
}

func TestRecoverTextWidthDegenerateSkewFallsBackToHeight(t *testing.T) {
	// xSkew = pi/2 forces cos(xSkew) ~= 0, exercising the degenerate-height branch
	// when cos(theta) is also near zero.
	w := RecoverTextWidth(50, 80, 0, 1, -1, 0, math.Pi/2, math.Pi/2, 10)
	assert.NotEqual(t, 0.0, w)
}
