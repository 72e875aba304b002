package repository

import "gorm.io/gorm/clause"

// forUpdate devuelve la cláusula de lock pesimista usada en las lecturas de
// caja dentro de transacciones. SQLite (tests) la ignora sin error.
func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}
