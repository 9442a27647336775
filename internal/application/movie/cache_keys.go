package movie

import "fmt"

func cacheKeyMovieDetails(id int64) string {
	return fmt.Sprintf("movie:details:%d", id)
}

const cacheKeyGenres = "genres:all"
