package dorkgen_test

import (
	"dorker/internal/dorkgen"
	"dorker/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := dorkgen.Catalog()

	require.Len(t, c, len(domain.Categories))
	require.Equal(t, []string{"pdf", "doc", "xls", "zip", "sql", "php", "asp"}, c[domain.CategoryFileTypes])
	require.Equal(t, []string{
		"directory_listing", "exposed_config", "database_exposure", "log_files", "backup_files",
	}, c[domain.CategoryVulnerability])
	require.Equal(t, []string{"wordpress", "joomla", "drupal", "phpinfo"}, c[domain.CategoryCMS])
	require.Equal(t, []string{"login", "admin", "password", "user_list"}, c[domain.CategoryAuth])
	require.Equal(t, []string{"sql_error", "server_error", "stack_trace", "debug_info"}, c[domain.CategoryErrors])
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := dorkgen.Catalog()
	c[domain.CategoryFileTypes][0] = "exe"
	delete(c, domain.CategoryCMS)

	fresh := dorkgen.Catalog()
	require.Equal(t, "pdf", fresh[domain.CategoryFileTypes][0])
	require.Contains(t, fresh, domain.CategoryCMS)
}

func TestCatalog_EveryTokenExpands(t *testing.T) {
	for c, tokens := range dorkgen.Catalog() {
		for _, tok := range tokens {
			exp, ok := dorkgen.Expand(c, tok)
			require.True(t, ok, "%s/%s", c, tok)
			require.NotEmpty(t, exp)
		}
	}
}

func TestExpand_Unknown(t *testing.T) {
	_, ok := dorkgen.Expand(domain.CategoryFileTypes, "exe")
	require.False(t, ok)

	// tokens are scoped to their category
	_, ok = dorkgen.Expand(domain.CategoryAuth, "pdf")
	require.False(t, ok)
}
