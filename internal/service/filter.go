package service

// productFilterFields and userFilterFields route incoming filter keys to the
// collection whose documents carry them. Any key in neither set falls into
// the reservation bucket and is passed through to the reservation query
// unchecked — a mistyped key silently matches nothing rather than erroring,
// which is the documented contract of the filter endpoint.
var productFilterFields = map[string]struct{}{
	"idProdutor":         {},
	"nomeProduto":        {},
	"precoProduto":       {},
	"quantidadeProduto":  {},
	"undMedida":          {},
	"dataCriacaoProduto": {},
	"modoProducao":       {},
	"categoriaProduto":   {},
}

var userFilterFields = map[string]struct{}{
	"nomeUsuario":         {},
	"telefoneUsuario":     {},
	"enderecoUsuario":     {},
	"dataCadastroUsuario": {},
	"tipoUsuario":         {},
}

// partitionFilters splits a flat filter map into the product, user and
// reservation buckets. The classification is total and order-independent:
// every key lands in exactly one bucket.
func partitionFilters(filters map[string]interface{}) (productFilters, userFilters, reservationFilters map[string]interface{}) {
	productFilters = map[string]interface{}{}
	userFilters = map[string]interface{}{}
	reservationFilters = map[string]interface{}{}

	for key, value := range filters {
		if _, ok := productFilterFields[key]; ok {
			productFilters[key] = value
			continue
		}
		if _, ok := userFilterFields[key]; ok {
			userFilters[key] = value
			continue
		}
		reservationFilters[key] = value
	}

	return productFilters, userFilters, reservationFilters
}

// allowedProductFilters keeps only the allow-listed product fields,
// deterministically ignoring anything else.
func allowedProductFilters(filters map[string]interface{}) map[string]interface{} {
	allowed := map[string]interface{}{}
	for key, value := range filters {
		if _, ok := productFilterFields[key]; ok {
			allowed[key] = value
		}
	}
	return allowed
}
