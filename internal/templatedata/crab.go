// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package templatedata provides canned sample documents for the built-in
// poster templates. The documents are pure static data: they pre-populate
// the creation form when the operator supplies no JSON, and seed the first
// record on an empty database.
package templatedata

// Crab returns the sample price-list document for the "crab" template.
// The field structure (title, highlight, sections with priced rows,
// promises) is a stable contract the template depends on; the prose is
// placeholder catalogue copy. A fresh copy is returned on every call so
// callers may mutate the result freely.
func Crab() map[string]any {
	return map[string]any{
		"title": "🦀 Premium Hairy Crab Set Menu",
		"highlight": map[string]any{
			"badge": "Popular",
			"text":  "Taster box, ten crabs (2.5 oz males, 1.5 oz females)",
			"price": "108",
		},
		"sections": []any{
			map[string]any{
				"variant": "mixed-8",
				"heading": "Mixed Box · 8 Crabs",
				"rows": []any{
					map[string]any{"spec": "3.0 male / 2.0 female (4 of each)", "price": "168"},
					map[string]any{"spec": "3.5 male / 2.5 female (4 of each)", "price": "218"},
					map[string]any{"spec": "3.5 male / 2.8 female (4 of each)", "price": "258"},
					map[string]any{"spec": "4.0 male / 3.0 female (4 of each)", "price": "328"},
				},
			},
			map[string]any{
				"variant": "mixed-10",
				"heading": "Mixed Box · 10 Crabs",
				"rows": []any{
					map[string]any{"spec": "3.0 male / 2.0 female (5 of each)", "price": "188"},
					map[string]any{"spec": "3.5 male / 2.5 female (5 of each)", "price": "258"},
					map[string]any{"spec": "3.5 male / 2.8 female (5 of each)", "price": "298"},
					map[string]any{"spec": "4.0 male / 3.0 female (5 of each)", "price": "398"},
				},
			},
			map[string]any{
				"variant": "female-8",
				"heading": "All-Female Selection · 8 Crabs",
				"rows": []any{
					map[string]any{"spec": "2.0 female (8 crabs)", "price": "158"},
					map[string]any{"spec": "2.5 female (8 crabs)", "price": "198"},
					map[string]any{"spec": "2.8 female (8 crabs)", "price": "258"},
					map[string]any{"spec": "3.0 female (8 crabs)", "price": "308"},
				},
			},
			map[string]any{
				"variant": "female-10",
				"heading": "All-Female Selection · 10 Crabs",
				"rows": []any{
					map[string]any{"spec": "2.0 female (10 crabs)", "price": "188"},
					map[string]any{"spec": "2.5 female (10 crabs)", "price": "238"},
					map[string]any{"spec": "2.8 female (10 crabs)", "price": "298"},
					map[string]any{"spec": "3.0 female (10 crabs)", "price": "368"},
				},
			},
		},
		"promises": []any{
			"🌟 Flexible bundles: mix and match sets for every taste and gift budget, message us for custom boxes",
			"🚚 Express delivery: cold-chain courier straight to your door, no waiting on freshness",
			"📦 Dispatch times: order before 19:00 and we ship next morning or afternoon, caught and packed same day",
			"🎁 Gift-ready: presentation box included, impressive to give and a treat to keep",
			"🦀 Worry-free guarantee: any crab dead on arrival refunded in full within 12 hours with photo or video proof",
			"💰 Shipping policy: discounted for nearby regions, small surcharge for remote provinces, see checkout for details",
		},
	}
}
