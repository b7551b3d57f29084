// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package imagestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soyounglim/gallerim/internal/platform/imagestore"
)

func TestCDNResolver_URL(t *testing.T) {
	resolver := imagestore.NewCDNResolver("https://img.gallerim.app/")

	assert.Equal(t, "https://img.gallerim.app/2026/ab12.webp", resolver.URL("2026/ab12.webp"))
	assert.Equal(t, "https://img.gallerim.app/2026/ab12.webp", resolver.URL("/2026/ab12.webp"))
	assert.Equal(t, "", resolver.URL(""))
}
