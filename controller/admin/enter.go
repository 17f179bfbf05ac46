package admin

type ApiGroup struct {
	CatalogApi CatalogApi
	SystemApi  SystemApi
}
