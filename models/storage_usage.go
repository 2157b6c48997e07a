// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StorageUsage reports how much local storage the client consumes.
//
// When the precise estimate is unavailable QuotaBytes is zero and
// IsAvailable is always true.
type StorageUsage struct {
	UsedBytes   int64 `json:"used_bytes"`
	QuotaBytes  int64 `json:"quota_bytes"`
	IsAvailable bool  `json:"is_available"`
	Estimated   bool  `json:"estimated"`
}

// UsagePercentage returns used/quota in percent, or 0 when the quota is unknown.
func (u StorageUsage) UsagePercentage() float64 {
	if u.QuotaBytes <= 0 {
		return 0
	}
	return float64(u.UsedBytes) / float64(u.QuotaBytes) * 100
}
