// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ficap

// pad is cache line padding to prevent false sharing between two
// otherwise-adjacent hot fields.
type pad [64]byte
