// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ring

// RaceEnabled is true when the race detector is active.
// Used by tests to shrink long cursor-cycling runs, which gain no
// coverage under the detector's slowdown.
const RaceEnabled = true
