package mysql

const createCatalogSQL = `
CREATE TABLE IF NOT EXISTS catalog_places (
  region      VARCHAR(64)   NOT NULL,
  position    INT           NOT NULL,
  name        VARCHAR(255)  NOT NULL,
  rating      VARCHAR(8)    NOT NULL,
  description TEXT          NOT NULL,
  category    VARCHAR(32)   NOT NULL,
  updated_at  TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (region, position)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

const deleteRegionSQL = `DELETE FROM catalog_places WHERE region = ?`

const insertPlacesPrefix = "INSERT INTO catalog_places\n  (region, position, name, rating, description, category)\nVALUES "

// Re-seeding the same region overwrites rows in place.
const insertPlacesOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  name        = VALUES(name),\n" +
	"  rating      = VALUES(rating),\n" +
	"  description = VALUES(description),\n" +
	"  category    = VALUES(category)\n"

const loadRegionsSQL = `
SELECT region, position, name, rating, description, category
FROM catalog_places
ORDER BY region, position
`
