package worker

// alerta_stock_worker.go
// Processes low-stock alert jobs from QueueAlertasStock: sends an email to
// the configured back-office address. Retries with backoff; exhausted jobs
// land in the DLQ.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxAlertaAttempts = 3

// AlertaStockPayload is the job envelope sent to QueueAlertasStock.
type AlertaStockPayload struct {
	VarianteID  string `json:"variante_id"`
	Producto    string `json:"producto"`
	SKU         string `json:"sku"`
	Talle       string `json:"talle"`
	Stock       int    `json:"stock"`
	StockMinimo int    `json:"stock_minimo"`
}

type AlertaStockWorker struct {
	mailer     *infra.Mailer
	alertEmail string
}

func NewAlertaStockWorker(mailer *infra.Mailer, alertEmail string) *AlertaStockWorker {
	return &AlertaStockWorker{mailer: mailer, alertEmail: alertEmail}
}

func (w *AlertaStockWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload AlertaStockPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_stock_worker: invalid payload")
		return
	}
	if w.alertEmail == "" {
		log.Debug().Str("sku", payload.SKU).Msg("alerta_stock_worker: no alert email configured — skipping")
		return
	}

	subject := fmt.Sprintf("Stock bajo: %s talle %s (%s)", payload.Producto, payload.Talle, payload.SKU)
	body := fmt.Sprintf(
		"La variante %s de %s (talle %s) quedó con %d unidades, mínimo configurado %d.\nReponer stock.",
		payload.SKU, payload.Producto, payload.Talle, payload.Stock, payload.StockMinimo,
	)

	err := withRetry(ctx, maxAlertaAttempts, func(attempt int) error {
		if err := w.mailer.SendAlerta(w.alertEmail, subject, body); err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("sku", payload.SKU).
				Msg("alerta_stock_worker: send failed, retrying")
			return err
		}
		return nil
	})
	if err != nil {
		SendToDLQ(ctx, rdb, QueueAlertasStock, "alerta_stock", raw,
			fmt.Sprintf("max retries (%d) exceeded: %v", maxAlertaAttempts, err),
			maxAlertaAttempts)
		return
	}
	log.Info().Str("sku", payload.SKU).Int("stock", payload.Stock).Msg("alerta_stock_worker: alerta enviada")
}
