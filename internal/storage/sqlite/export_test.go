// SPDX-License-Identifier: MIT
package sqlite

import "time"

// SetClock replaces the store clock.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

var ExtractUp = extractUp
