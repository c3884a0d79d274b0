package cli

import (
	"github.com/spf13/pflag"

	"github.com/vietddude/touradmin/internal/service"
)

func addListFlags(f *pflag.FlagSet, p *service.ListParams) {
	f.IntVar(&p.Page, "page", 1, "page number")
	f.IntVar(&p.Limit, "limit", 20, "page size")
	f.StringVar(&p.Search, "search", "", "search text")
	f.StringVar(&p.Sort, "sort", "", "sort field, prefix with - for descending")
}
