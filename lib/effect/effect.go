// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package effect maps profile effect ids to the video filter chains
// forwarded to the player and to the color scheme used by the overlay.
// Chains are opaque hand-tuned data, not computed — tweak them here,
// nowhere else.
package effect

import "strings"

// chains is the static id → filter-chain table. Each chain is an mpv
// vf expression applied verbatim.
var chains = map[string]string{
	"vhs-clean":      "format=yuv420p,eq=brightness=-0.02:contrast=0.94:saturation=0.78:gamma=1.06,noise=alls=9:allf=t,gblur=sigma=0.4,crop=iw:ih*0.97",
	"vintage-fade":   "eq=brightness=0.01:contrast=0.88:saturation=0.62:gamma=1.12,noise=alls=5:allf=t,vignette=PI/5",
	"pixel-grid":     "scale=iw/3:ih/3:flags=neighbor,scale=iw*3:ih*3:flags=neighbor,eq=saturation=1.18:contrast=1.08",
	"glitch-storm":   "noise=alls=22:allf=t+u,eq=brightness=0.03:saturation=1.35,hue=h=8*sin(2*PI*t/7)",
	"cyberpunk-glow": "eq=brightness=0.04:contrast=1.12:saturation=1.40:gamma=0.96,unsharp=5:5:1.2,hue=h=4",
	"neon-pulse":     "eq=saturation=1.55:contrast=1.15,hue=s=1.2+0.3*sin(2*PI*t/11)",
}

// Resolve maps the profile's effect ids to the combined filter chain
// and the color scheme. Unknown ids are skipped — no chain, no error.
// The scheme is Vintage when any id belongs to the VHS/vintage family,
// Neon otherwise.
func Resolve(ids []string) (string, Scheme) {
	var parts []string
	scheme := Neon
	for _, id := range ids {
		if chain, ok := chains[id]; ok {
			parts = append(parts, chain)
		}
		if isVintage(id) {
			scheme = Vintage
		}
	}
	return strings.Join(parts, ","), scheme
}

// Chain returns the filter chain for a single id, if known.
func Chain(id string) (string, bool) {
	chain, ok := chains[id]
	return chain, ok
}

// IDs lists the known effect ids, for the CLI's effects listing.
func IDs() []string {
	ids := make([]string, 0, len(chains))
	for id := range chains {
		ids = append(ids, id)
	}
	return ids
}

// isVintage reports whether an effect id belongs to the vintage
// family. Family membership is by name marker: "vintage" and "vhs"
// ids pull the warm palette, everything else stays neon.
func isVintage(id string) bool {
	return strings.Contains(id, "vintage") || strings.Contains(id, "vhs")
}
