// Package fluent provides an ergonomic interface for message
// localization with language fallbacks.
//
// An Ergo holds one message bundle per language. Languages are searched
// in the order given at construction, so the first tag is the preferred
// language and later tags are fallbacks. No resources are loaded at
// construction; call AddFromText or AddFromFile to register message
// catalogs, then Tr to translate.
//
//	ergo := fluent.New(language.MustParse("eo"), language.AmericanEnglish)
//	if err := ergo.AddFromText(language.AmericanEnglish, catalog); err != nil {
//		...
//	}
//	msg, err := ergo.Tr("history", nil)
package fluent
