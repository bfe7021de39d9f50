package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_quoter/internal/adapters/observability"
	"hotel_quoter/internal/domain"
)

// LLMExtractor drives the remote completion service and degrades to the
// deterministic Fallback on any failure. Extract never returns an error.
type LLMExtractor struct {
	client         domain.CompletionClient
	pastWindowDays int
	now            func() time.Time
}

func NewLLMExtractor(c domain.CompletionClient, pastWindowDays int) *LLMExtractor {
	return &LLMExtractor{client: c, pastWindowDays: pastWindowDays, now: time.Now}
}

// WithClock overrides the reference-date source; tests pin it.
func (e *LLMExtractor) WithClock(now func() time.Time) *LLMExtractor {
	e.now = now
	return e
}

func (e *LLMExtractor) Extract(ctx context.Context, message string) domain.Reservation {
	ref := truncateDay(e.now())

	if e.client == nil {
		observability.ObserveExtraction("fallback")
		log.Warn().Msg("no completion client configured, using fallback extraction")
		return Fallback(message, ref)
	}

	raw, err := e.client.CompleteJSON(ctx, systemPrompt(ref), fmt.Sprintf("Mensaje del cliente: %q", message))
	if err != nil {
		observability.ObserveExtraction("fallback")
		log.Warn().Err(err).Msg("completion call failed, using fallback extraction")
		return Fallback(message, ref)
	}

	rec, err := decodeReply(raw)
	if err != nil {
		observability.ObserveExtraction("fallback")
		log.Warn().Err(err).Str("reply", truncateStr(raw, 200)).Msg("unparseable completion reply, using fallback extraction")
		return Fallback(message, ref)
	}

	rec = NormalizeDates(rec, ref, e.pastWindowDays)
	rec = ValidateFields(rec)

	observability.ObserveExtraction("llm")
	log.Info().
		Str("check_in", rec.CheckIn).
		Str("check_out", rec.CheckOut).
		Str("guests", rec.Guests).
		Str("rooms", rec.RoomCount).
		Str("types", rec.RoomTypes).
		Msg("reservation extracted")
	return rec
}

// decodeReply strips any code-fence wrapper and decodes the five-field JSON
// object. Values arrive as strings, numbers or nulls depending on the model's
// mood, so each field is coerced individually.
func decodeReply(raw string) (domain.Reservation, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return domain.Reservation{}, err
	}
	return domain.Reservation{
		CheckIn:   stringField(payload, "check_in"),
		CheckOut:  stringField(payload, "check_out"),
		Guests:    stringField(payload, "cant_personas"),
		RoomCount: stringField(payload, "cantidad_habitaciones"),
		RoomTypes: stringField(payload, "tipo_habitaciones"),
	}, nil
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.Itoa(int(v))
	}
	return ""
}

func truncateStr(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// systemPrompt embeds the reference date plus its two derived points so the
// model can resolve "hoy", "mañana" and "pasado mañana", and enumerates the
// five extractable fields with explicit non-invention rules.
func systemPrompt(ref time.Time) string {
	hoy := ref.Format(domain.DateLayout)
	manana := ref.AddDate(0, 0, 1).Format(domain.DateLayout)
	pasado := ref.AddDate(0, 0, 2).Format(domain.DateLayout)

	return fmt.Sprintf(`Hoy es %s. Zona horaria: America/Santiago (UTC-3)

Eres un extractor de información para reservas de hotel. Tu tarea es identificar datos para una reserva ÚNICAMENTE si el usuario los menciona. Si un dato no aparece en el mensaje del usuario, no debes inventarlo ni asumirlo.

Solo debes extraer estos datos:
- check_in: Fecha de entrada (formato YYYY-MM-DD)
- check_out: Fecha de salida (formato YYYY-MM-DD)
- cant_personas: Cantidad de personas
- cantidad_habitaciones: Cantidad de habitaciones
- tipo_habitaciones: Tipo de habitaciones (single, estandar, superior, doble)

REGLAS IMPORTANTES:

1. Si el usuario NO menciona ninguna fecha, día o referencia de tiempo, NO debes entregar día de entrada ni día de salida.

2. Si el usuario SÍ menciona una fecha o un día, entonces debes generar:
   - Día de entrada según lo que diga el usuario
   - Día de salida: normalmente es el día siguiente, a menos que el usuario dé un rango (ejemplo: del 12 al 15)

3. Referencias de tiempo comunes:
   - "mañana" = %s
   - "pasado mañana" = %s
   - "hoy" = %s
   - Si menciona día de semana (lunes, martes, etc.), calcular la fecha más cercana

4. Si el usuario menciona un día numérico sin mes (por ejemplo: "del 15 al 18"), y la fecha actual ya pasó esos días del mes, entonces se interpreta que se refiere al mes siguiente.

5. Si el usuario menciona cantidad de personas, extrae ese valor. Si no la menciona, NO inventes nada.

6. Si el usuario menciona cantidad de habitaciones, extráelo. Si no lo menciona, puedes asumir 1 solo si ya existe una fecha y personas. Si el usuario no menciona fechas, NO asumas habitaciones.

7. Para tipo_habitaciones, normaliza a: "single", "estandar", "superior", "doble"
   - Si menciona múltiples habitaciones, indica cantidad y tipo: "2 estandar", "1 superior y 1 doble"

RESPONDE SOLO CON UN JSON VÁLIDO (sin markdown, sin backticks, sin explicaciones):
{"check_in": null, "check_out": null, "cant_personas": null, "cantidad_habitaciones": null, "tipo_habitaciones": null}

Reemplaza null con los valores encontrados o mantén null si no se mencionan.`, hoy, manana, pasado, hoy)
}
