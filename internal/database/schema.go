package database

import (
	"context"
	"database/sql"
)

// schemaDDL creates the marketplace tables when they do not exist yet. Order
// matters: user must exist before the tables that reference it.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS user (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name          VARCHAR(255) NOT NULL,
		surname       VARCHAR(255) NOT NULL,
		phone         VARCHAR(255) NOT NULL,
		UNIQUE KEY uq_user_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS admin (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		UNIQUE KEY uq_admin_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS item (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		description TEXT,
		price       INT NOT NULL,
		KEY idx_item_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS cart (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		item_id      BIGINT UNSIGNED NOT NULL,
		price        INT NOT NULL,
		quantity     INT NOT NULL,
		total        INT NOT NULL,
		recycle_type VARCHAR(255) NOT NULL,
		user_id      BIGINT UNSIGNED NOT NULL,
		KEY idx_cart_user (user_id),
		CONSTRAINT fk_cart_user FOREIGN KEY (user_id) REFERENCES user (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS checkout (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id      BIGINT UNSIGNED NOT NULL,
		recycle_type VARCHAR(50) NOT NULL,
		quantity     INT NOT NULL,
		total        INT NOT NULL,
		address      VARCHAR(255) NOT NULL,
		payment_type VARCHAR(100) NOT NULL,
		KEY idx_checkout_user (user_id),
		CONSTRAINT fk_checkout_user FOREIGN KEY (user_id) REFERENCES user (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS invoice (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		date           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		total_price    DECIMAL(10,2) NOT NULL,
		payment_method VARCHAR(100) NOT NULL,
		user_id        BIGINT UNSIGNED NOT NULL,
		KEY idx_invoice_user (user_id),
		CONSTRAINT fk_invoice_user FOREIGN KEY (user_id) REFERENCES user (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates all tables required by the service if absent. It is
// idempotent and safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
