package postgres

const upsertViewSQL = `
INSERT INTO movie_views (ip_address, movie_id, view_count, first_seen_at, last_seen_at)
VALUES ($1, $2, 1, NOW(), NOW())
ON CONFLICT (ip_address, movie_id)
DO UPDATE SET view_count = movie_views.view_count + 1, last_seen_at = NOW()
`

const sumViewsSQL = `
SELECT movie_id, SUM(view_count)
FROM movie_views
WHERE movie_id = ANY($1)
GROUP BY movie_id
`

const insertMovieSQL = `
INSERT INTO movies (title, image, release_date, description, created_by, duration, categories, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING id
`

const updateMovieSQL = `
UPDATE movies SET
  title=$2, image=$3, release_date=$4, description=$5, duration=$6, categories=$7, updated_at=NOW()
WHERE id=$1
`

const deleteMovieSQL = `DELETE FROM movies WHERE id = $1`

const insertMovieGenreSQL = `INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)`

const deleteMovieGenresSQL = `DELETE FROM movie_genres WHERE movie_id = $1`

const insertRatingSQL = `
INSERT INTO ratings (user_id, movie_id, score, created_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (user_id, movie_id) DO NOTHING
`

const avgRatingSQL = `SELECT AVG(score) FROM ratings WHERE movie_id = $1`

const avgRatingsSQL = `
SELECT movie_id, AVG(score)
FROM ratings
WHERE movie_id = ANY($1)
GROUP BY movie_id
`

const userRatingSQL = `SELECT score FROM ratings WHERE user_id = $1 AND movie_id = $2`

const insertCommentSQL = `
INSERT INTO comments (movie_id, user_id, content, created_at, updated_at)
VALUES ($1, $2, $3, NOW(), NOW())
RETURNING id, created_at, updated_at
`

const getCommentSQL = `
SELECT id, movie_id, user_id, content, created_at, updated_at
FROM comments WHERE id = $1
`

const updateCommentSQL = `UPDATE comments SET content=$2, updated_at=NOW() WHERE id=$1`

const deleteCommentSQL = `DELETE FROM comments WHERE id = $1`

const listCommentsSQL = `
SELECT c.id, c.movie_id, c.user_id, c.content, c.created_at, c.updated_at,
       u.first_name, u.last_name
FROM comments c
JOIN users u ON u.id = c.user_id
WHERE c.movie_id = $1
ORDER BY c.created_at DESC
`

const listGenresSQL = `SELECT id, name FROM genres ORDER BY name`

const genresByIDsSQL = `SELECT id, name FROM genres WHERE id = ANY($1)`

const genreIDsByNamesSQL = `SELECT id FROM genres WHERE name = ANY($1) ORDER BY id`

const insertUserSQL = `
INSERT INTO users (first_name, last_name, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, NOW())
RETURNING id, created_at
`

const userByEmailSQL = `
SELECT id, first_name, last_name, email, password_hash, created_at
FROM users WHERE email = $1
`

const userByIDSQL = `
SELECT id, first_name, last_name, email, password_hash, created_at
FROM users WHERE id = $1
`
