package worker

// alerta_cron.go
// Background goroutine that periodically re-escanea las variantes bajo mínimo
// y encola una alerta por cada una. Cubre los casos en que el encolado
// post-venta falló (Redis caído) o el stock bajó por fuera de una venta.

import (
	"context"
	"time"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"

	"github.com/rs/zerolog/log"
)

const alertaTickInterval = 6 * time.Hour

// StartAlertaCron launches a goroutine that ticks periodically, queries the
// variants at or below their minimum and enqueues one alert job each.
// It respects the context for graceful shutdown.
func StartAlertaCron(ctx context.Context, variantes repository.VarianteRepository, dispatcher *Dispatcher) {
	go func() {
		ticker := time.NewTicker(alertaTickInterval)
		defer ticker.Stop()

		log.Info().Msg("alerta_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("alerta_cron: shutting down")
				return
			case <-ticker.C:
				scanStockBajo(ctx, variantes, dispatcher)
			}
		}
	}()
}

func scanStockBajo(ctx context.Context, variantes repository.VarianteRepository, dispatcher *Dispatcher) {
	bajas, err := variantes.List(ctx, repository.VarianteFilter{StockBajo: true})
	if err != nil {
		log.Error().Err(err).Msg("alerta_cron: failed to query low stock variants")
		return
	}
	if len(bajas) == 0 {
		return
	}

	log.Info().Int("count", len(bajas)).Msg("alerta_cron: variantes bajo mínimo")

	for i := range bajas {
		v := &bajas[i]
		payload := AlertaStockPayload{
			VarianteID:  v.ID.String(),
			SKU:         v.SKU,
			Talle:       v.Talle,
			Stock:       v.Stock,
			StockMinimo: v.StockMinimo,
		}
		if v.Producto != nil {
			payload.Producto = v.Producto.Nombre
		}
		if err := dispatcher.EnqueueAlertaStock(ctx, payload); err != nil {
			log.Warn().Err(err).Str("sku", v.SKU).Msg("alerta_cron: failed to enqueue alert")
		}
	}
}
