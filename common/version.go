/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"time"
)

const releaseYear = 2026
const releaseMonth = 7
const releaseDay = 30
const releaseHour = 9
const releaseMin = 0

// Version holds the draw2svg release version. Bump alongside ReleasedAt.
const Version = "0.1.0"

// ReleasedAt is the timestamp of the Version release.
var ReleasedAt = time.Date(releaseYear, releaseMonth, releaseDay, releaseHour, releaseMin, 0, 0, time.UTC)
