// Package embedding fits a latent semantic model over course texts.
//
// A Vectorizer turns text into L2-normalised TF-IDF rows over a capped
// unigram and bigram vocabulary. A truncated SVD then compresses those rows
// into dense embeddings. Queries go through the same two transforms, so
// out-of-vocabulary words contribute nothing and ranking is driven by the
// latent components the corpus terms share.
//
// A Model starts Untrained and becomes Trained after exactly one call to Fit.
// Every query method returns ErrNotFitted before that.
//
//	model, err := embedding.NewModel(embedding.WithComponents(50))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := model.Fit(catalog.Texts()); err != nil {
//	    log.Fatal(err)
//	}
//	ranking, err := model.Recommend("how do I hack into systems", catalog.Courses(), 5)
package embedding
