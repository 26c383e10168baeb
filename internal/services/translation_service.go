package services

import "github.com/fertivia/clinic/internal/models"

type TranslationListRepository interface {
	ListAll() ([]models.Translation, error)
}

type TranslationService struct {
	translations TranslationListRepository
}

// TranslationCatalog maps keywords to localized strings per language.
// Values are pointers: a keyword without a value in some language surfaces
// as null instead of disappearing from that language's map.
type TranslationCatalog struct {
	English map[string]*string
	Serbian map[string]*string
	Russian map[string]*string
	Chinese map[string]*string
}

func NewTranslationService(translations TranslationListRepository) *TranslationService {
	return &TranslationService{translations: translations}
}

// Catalog builds the four language maps from the translation rows in
// storage order. A keyword stored twice keeps its later value, matching
// how the rows have always been consumed.
func (service *TranslationService) Catalog() (TranslationCatalog, error) {
	rows, err := service.translations.ListAll()
	if err != nil {
		return TranslationCatalog{}, err
	}

	catalog := TranslationCatalog{
		English: make(map[string]*string, len(rows)),
		Serbian: make(map[string]*string, len(rows)),
		Russian: make(map[string]*string, len(rows)),
		Chinese: make(map[string]*string, len(rows)),
	}
	for _, row := range rows {
		catalog.English[row.Keyword] = row.English
		catalog.Serbian[row.Keyword] = row.Serbian
		catalog.Russian[row.Keyword] = row.Russian
		catalog.Chinese[row.Keyword] = row.Chinese
	}
	return catalog, nil
}
