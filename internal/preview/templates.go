package preview

const jobDocument = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />

  <!-- Primary Meta Tags -->
  <title>{{.JobTitle}}</title>
  <meta name="title" content="{{.JobTitle}}" />
  <meta name="description" content="{{.JobDescription}}" />

  <!-- Open Graph / Facebook -->
  <meta property="og:type" content="website" />
  <meta property="og:url" content="{{.JobURL}}" />
  <meta property="og:title" content="{{.JobTitle}}" />
  <meta property="og:description" content="{{.JobDescription}}" />
  <meta property="og:image" content="{{.JobImage}}" />
  <meta property="og:image:width" content="1200" />
  <meta property="og:image:height" content="630" />
  <meta property="og:site_name" content="{{.SiteName}}" />

  <!-- Twitter -->
  <meta name="twitter:card" content="summary_large_image" />
  <meta name="twitter:url" content="{{.JobURL}}" />
  <meta name="twitter:title" content="{{.JobTitle}}" />
  <meta name="twitter:description" content="{{.JobDescription}}" />
  <meta name="twitter:image" content="{{.JobImage}}" />

  <!-- Additional Meta Tags -->
  <meta name="robots" content="index, follow" />
  <meta name="author" content="{{.SiteName}}" />
  <meta name="keywords" content="{{.Keywords}}" />

  <!-- Structured Data (JSON-LD) -->
  <script type="application/ld+json">
  {{.JSONLD}}
  </script>

  <!-- Favicon -->
  <link rel="icon" type="image/svg+xml" href="/favicon.svg" />

  <style>
    body {
      margin: 0;
      padding: 0;
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif;
      background: #f9fafb;
    }
    .loading-container {
      display: flex;
      flex-direction: column;
      align-items: center;
      justify-content: center;
      min-height: 100vh;
      text-align: center;
      padding: 20px;
    }
    .loading-spinner {
      width: 48px;
      height: 48px;
      border: 3px solid #e5e7eb;
      border-top: 3px solid #2563eb;
      border-radius: 50%;
      animation: spin 1s linear infinite;
      margin-bottom: 16px;
    }
    @keyframes spin {
      0% { transform: rotate(0deg); }
      100% { transform: rotate(360deg); }
    }
    .job-preview {
      max-width: 600px;
      margin: 0 auto;
      background: white;
      border-radius: 8px;
      padding: 24px;
      box-shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
      margin-bottom: 20px;
    }
    .job-title {
      font-size: 24px;
      font-weight: bold;
      color: #111827;
      margin-bottom: 8px;
    }
    .job-company {
      font-size: 18px;
      color: #6b7280;
      margin-bottom: 8px;
    }
    .job-location {
      font-size: 16px;
      color: #6b7280;
      margin-bottom: 16px;
    }
    .job-description {
      font-size: 14px;
      color: #374151;
      line-height: 1.5;
    }
  </style>
</head>
<body>
  <div id="root">
    <!-- Loading fallback -->
    <div class="loading-container">
      <div class="loading-spinner"></div>
      <p style="color: #6b7280; font-family: Arial, sans-serif;">Loading {{.SiteName}}...</p>

      <!-- Job preview for social media -->
      <div class="job-preview">
        <div class="job-title">{{.Title}}</div>
        <div class="job-company">{{.Company}}</div>
        <div class="job-location">&#128205; {{.Location}}</div>
        <div class="job-description">{{.CardDescription}}</div>
      </div>
    </div>
  </div>

  <script>
    // Redirect to the actual app
    window.location.href = '{{.JobURL}}';
  </script>

  <script type="module" src="/assets/main.js"></script>
</body>
</html>`

const fallbackDocument = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>{{.SiteName}} - Find Your Dream Job</title>
  <meta name="description" content="Discover thousands of job opportunities in Western Sydney. Explore top employers across all industries and kickstart your career today!" />
  <meta property="og:title" content="{{.SiteName}} - Find Your Dream Job" />
  <meta property="og:description" content="Discover thousands of job opportunities in Western Sydney. Explore top employers across all industries and kickstart your career today!" />
  <meta property="og:image" content="{{.PreviewImage}}" />
  <link rel="icon" type="image/svg+xml" href="/favicon.svg" />
</head>
<body>
  <div id="root">
    <div style="display: flex; flex-direction: column; align-items: center; justify-content: center; min-height: 100vh; text-align: center; padding: 20px;">
      <div style="width: 48px; height: 48px; border: 3px solid #e5e7eb; border-top: 3px solid #2563eb; border-radius: 50%; animation: spin 1s linear infinite; margin-bottom: 16px;"></div>
      <p style="color: #6b7280; font-family: Arial, sans-serif;">Loading {{.SiteName}}...</p>
    </div>
  </div>
  <script type="module" src="/assets/main.js"></script>
</body>
</html>`
