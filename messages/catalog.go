package messages

import (
	"github.com/aalemi-dev/convert-lab/converter"
)

// translations maps locale to the text of every converter.Kind. Verbs are
// indexed so each locale can order the arguments freely; see arguments for
// what each kind receives.
var translations = map[string]map[converter.Kind]string{
	"en-US": {
		converter.KindCandidateRequired:          "A converter candidate is required.",
		converter.KindCandidateNotAccessible:     "Converter candidate %[1]s is not accessible; it must be an exported named type.",
		converter.KindMethodNotAccessible:        "Converter method %[1]s of %[2]s is not accessible.",
		converter.KindMissingReturnType:          "Converter method %[1]s of %[2]s does not return a value.",
		converter.KindMissingSourceParameter:     "Converter method %[1]s of %[2]s does not take a source parameter.",
		converter.KindUnsupportedSignature:       "Converter method %[1]s of %[2]s has an unsupported signature.",
		converter.KindIdentityConversionRejected: "Converter method %[1]s of %[2]s converts %[3]s to itself.",
		converter.KindDuplicateRegistration:      "%[3]s already registers a converter from %[1]s to %[2]s.",
		converter.KindConflictingConverter:       "%[3]s cannot register a converter from %[1]s to %[2]s: %[4]s already provides one.",
		converter.KindNoConvertersFound:          "Converter candidate %[1]s does not provide any converters.",
		converter.KindNullTarget:                 "A target type is required.",
		converter.KindNoConverterFound:           "No converter found from %[1]s to %[2]s.",
		converter.KindTooFewArguments:            "Too few arguments for the converter from %[1]s to %[2]s provided by %[3]s.",
		converter.KindTooManyArguments:           "Too many arguments for the converter from %[1]s to %[2]s provided by %[3]s.",
		converter.KindArgumentTypeMismatch:       "Argument types do not match the converter from %[1]s to %[2]s provided by %[3]s.",
		converter.KindConversionFailed:           "Converting %[1]s to %[2]s with %[3]s failed: %[4]s",
	},
	"de-DE": {
		converter.KindCandidateRequired:          "Ein Konverter-Kandidat ist erforderlich.",
		converter.KindCandidateNotAccessible:     "Der Konverter-Kandidat %[1]s ist nicht zugänglich; er muss ein exportierter benannter Typ sein.",
		converter.KindMethodNotAccessible:        "Die Konvertermethode %[1]s von %[2]s ist nicht zugänglich.",
		converter.KindMissingReturnType:          "Die Konvertermethode %[1]s von %[2]s liefert keinen Wert zurück.",
		converter.KindMissingSourceParameter:     "Die Konvertermethode %[1]s von %[2]s erwartet keinen Quellparameter.",
		converter.KindUnsupportedSignature:       "Die Konvertermethode %[1]s von %[2]s hat eine nicht unterstützte Signatur.",
		converter.KindIdentityConversionRejected: "Die Konvertermethode %[1]s von %[2]s konvertiert %[3]s in sich selbst.",
		converter.KindDuplicateRegistration:      "%[3]s registriert bereits einen Konverter von %[1]s nach %[2]s.",
		converter.KindConflictingConverter:       "%[3]s kann keinen Konverter von %[1]s nach %[2]s registrieren: %[4]s stellt bereits einen bereit.",
		converter.KindNoConvertersFound:          "Der Konverter-Kandidat %[1]s stellt keine Konverter bereit.",
		converter.KindNullTarget:                 "Ein Zieltyp ist erforderlich.",
		converter.KindNoConverterFound:           "Kein Konverter von %[1]s nach %[2]s gefunden.",
		converter.KindTooFewArguments:            "Zu wenige Argumente für den Konverter von %[1]s nach %[2]s aus %[3]s.",
		converter.KindTooManyArguments:           "Zu viele Argumente für den Konverter von %[1]s nach %[2]s aus %[3]s.",
		converter.KindArgumentTypeMismatch:       "Die Argumenttypen passen nicht zum Konverter von %[1]s nach %[2]s aus %[3]s.",
		converter.KindConversionFailed:           "Die Konvertierung von %[1]s nach %[2]s mit %[3]s ist fehlgeschlagen: %[4]s",
	},
	"es-ES": {
		converter.KindCandidateRequired:          "Se requiere un candidato de conversor.",
		converter.KindCandidateNotAccessible:     "El candidato de conversor %[1]s no es accesible; debe ser un tipo con nombre exportado.",
		converter.KindMethodNotAccessible:        "El método de conversión %[1]s de %[2]s no es accesible.",
		converter.KindMissingReturnType:          "El método de conversión %[1]s de %[2]s no devuelve ningún valor.",
		converter.KindMissingSourceParameter:     "El método de conversión %[1]s de %[2]s no recibe un parámetro de origen.",
		converter.KindUnsupportedSignature:       "El método de conversión %[1]s de %[2]s tiene una firma no admitida.",
		converter.KindIdentityConversionRejected: "El método de conversión %[1]s de %[2]s convierte %[3]s en sí mismo.",
		converter.KindDuplicateRegistration:      "%[3]s ya registra un conversor de %[1]s a %[2]s.",
		converter.KindConflictingConverter:       "%[3]s no puede registrar un conversor de %[1]s a %[2]s: %[4]s ya proporciona uno.",
		converter.KindNoConvertersFound:          "El candidato de conversor %[1]s no proporciona ningún conversor.",
		converter.KindNullTarget:                 "Se requiere un tipo de destino.",
		converter.KindNoConverterFound:           "No se encontró ningún conversor de %[1]s a %[2]s.",
		converter.KindTooFewArguments:            "Faltan argumentos para el conversor de %[1]s a %[2]s de %[3]s.",
		converter.KindTooManyArguments:           "Sobran argumentos para el conversor de %[1]s a %[2]s de %[3]s.",
		converter.KindArgumentTypeMismatch:       "Los tipos de los argumentos no coinciden con el conversor de %[1]s a %[2]s de %[3]s.",
		converter.KindConversionFailed:           "La conversión de %[1]s a %[2]s con %[3]s falló: %[4]s",
	},
}

// arguments returns exactly the values the kind's messages reference.
func arguments(e *converter.Error) []any {
	switch e.Kind {
	case converter.KindCandidateNotAccessible, converter.KindNoConvertersFound:
		return []any{name(e.Owner)}
	case converter.KindMethodNotAccessible, converter.KindMissingReturnType,
		converter.KindMissingSourceParameter, converter.KindUnsupportedSignature:
		return []any{e.Method, name(e.Owner)}
	case converter.KindIdentityConversionRejected:
		return []any{e.Method, name(e.Owner), name(e.Source)}
	case converter.KindNoConverterFound:
		return []any{name(e.Source), name(e.Target)}
	case converter.KindDuplicateRegistration, converter.KindTooFewArguments,
		converter.KindTooManyArguments, converter.KindArgumentTypeMismatch:
		return []any{name(e.Source), name(e.Target), name(e.Owner)}
	case converter.KindConflictingConverter:
		return []any{name(e.Source), name(e.Target), name(e.Owner), name(e.Existing)}
	case converter.KindConversionFailed:
		cause := "-"
		if e.Err != nil {
			cause = e.Err.Error()
		}
		return []any{name(e.Source), name(e.Target), name(e.Owner), cause}
	}
	return nil
}
