// Package i18n translates user-facing messages from nested YAML catalogs.
//
// A catalog file maps language codes to (possibly nested) message trees:
//
//	en:
//	  result:
//	    brand: "Brand: %{brand}"
//	pt:
//	  result:
//	    brand: "Bandeira: %{brand}"
//
// Catalogs are loaded through a TranslationAdapter. MapAdapter serves
// in-memory maps and FSAdapter reads every YAML file of a directory in an
// fs.FS, typically an embed.FS.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(NewYAMLParser(), locales, "locales"))
//	lang := tr.Match(os.Getenv("LANG"))
//	fmt.Println(tr.T(lang, "result.brand", "brand", "Visa"))
//
// Match negotiates a requested language against the loaded ones with
// golang.org/x/text/language, so "pt-BR" or "pt_BR.UTF-8" resolve to "pt".
//
// A Translator is immutable after construction and safe for concurrent use.
package i18n
