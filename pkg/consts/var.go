package consts

// CatalogImage is one entry of the curated notebook image catalog offered on
// the hub request form. Custom images bypass the catalog.
type CatalogImage struct {
	URI string
	Tag string
}

const rttlImageRegistry = "us-west1-docker.pkg.dev/uwit-mci-axdd/rttl-images/"

var ImageCatalog = map[string]CatalogImage{
	"scipy":       {URI: rttlImageRegistry + "jupyter-scipy-notebook", Tag: "2.7.1"},
	"datascience": {URI: rttlImageRegistry + "jupyter-datascience-notebook", Tag: "2.7.1"},
	"tensorflow":  {URI: rttlImageRegistry + "jupyter-tensorflow-notebook", Tag: "2.7.1"},
	"r":           {URI: rttlImageRegistry + "jupyter-r-notebook", Tag: "2.7.1"},
	"rstudio":     {URI: rttlImageRegistry + "jupyter-rstudio-notebook", Tag: "2.7.1"},
	"rstudio-ai":  {URI: rttlImageRegistry + "jupyter-ai-notebook", Tag: "2.7.0"},
}

const DefaultCatalogImage = "scipy"

// CatalogNameForImage reverses an image URI back to its catalog name, or
// "custom" when the URI is not in the catalog.
func CatalogNameForImage(uri string) string {
	for name, image := range ImageCatalog {
		if image.URI == uri {
			return name
		}
	}
	return "custom"
}
