// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("releases/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	d, err := hashkit.NewDigester(store, hashkit.WithAlgorithm("city128"))
//
// # Features
//
//   - HeadObject on Open, so missing objects fail early with blobstore.ErrNotFound
//   - Ranged GETs for ReadAt
//   - Whole-object fetches split into parallel parts (manager.Downloader)
//   - Automatic pagination for listing
package s3
